package qwen

import "context"

// IQwen defines the interface for the Qwen (DashScope) client
type IQwen interface {
	// GenerateContent sends a generation request
	GenerateContent(ctx context.Context, req *Request) (*Response, error)

	// Model returns the model being used
	Model() string
}

// New creates a new Qwen client
func New(cfg Config) (IQwen, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newQwenImpl(cfg), nil
}
