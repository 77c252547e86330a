// Package database provides PostgreSQL connectivity and repositories.
//
// Uses pgx for connection pooling and goose for embedded migrations.
// Repositories implement the domain interfaces: UserRepository and
// SettingRepository.
package database
