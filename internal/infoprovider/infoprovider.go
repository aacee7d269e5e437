package infoprovider

// InfoProvider supplies the data a policy is evaluated against.
type InfoProvider interface {
	GetAllowedOrigins() ([]string, error)
}
