package llm

import "context"

// EchoProvider generates nothing. It lets the service run without a model:
// with ReturnFullText the reply is the prompt alone.
type EchoProvider struct{}

func (EchoProvider) Name() string { return "echo" }

func (EchoProvider) Generate(ctx context.Context, req Request) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return "", nil
}
