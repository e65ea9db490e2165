// Package domain contains the core business entities and validation logic
// of the application: users, tasks, and the task status and priority
// enumerations. It is independent of any specific infrastructure or
// delivery mechanism.
package domain
