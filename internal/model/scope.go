package model

// Scope carries the authenticated caller identity through usecases.
type Scope struct {
	UserID string
}

// Environment is the runtime environment name.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)
