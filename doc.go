// Package main provides the entry point for the artifact depot server.
// It runs a daemon that stores access tokens and shared configuration in a
// database using gorm, authenticates clients through a chain of token and
// LDAP backends and keeps its runtime settings in a schema-validated shared
// configuration document that can live in a file or in the database.
package main
