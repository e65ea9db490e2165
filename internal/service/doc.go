// Package service contains the application-specific use cases and business
// logic. It orchestrates interactions between domain objects and repositories
// (defined in internal/store) to fulfill application features.
//
// Each service focuses on one domain area: user registration and
// authentication, or task management with per-user ownership. Services
// receive their dependencies through constructor injection and depend only
// on domain entities and store interfaces, never on concrete
// infrastructure, so delivery mechanisms and storage backends can change
// independently of the business rules.
package service
