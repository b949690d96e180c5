package infra

import "github.com/fmi4go/fmutest/pkg/domain/interfaces"

type Clients struct {
	env    interfaces.Environment
	policy interfaces.Policy
}

func (x *Clients) Env() interfaces.Environment { return x.env }
func (x *Clients) Policy() interfaces.Policy   { return x.policy }

// New returns clients backed by the OS environment unless WithEnv is given.
func New(options ...Option) *Clients {
	clients := &Clients{
		env: OSEnv{},
	}
	for _, option := range options {
		option(clients)
	}

	return clients
}

type Option func(*Clients)

func WithEnv(env interfaces.Environment) Option {
	return func(clients *Clients) {
		clients.env = env
	}
}

func WithPolicy(policy interfaces.Policy) Option {
	return func(clients *Clients) {
		clients.policy = policy
	}
}
