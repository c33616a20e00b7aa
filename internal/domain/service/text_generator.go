package service

import "context"

// GeneratedPost is a draft produced by the generative text collaborator.
// It is returned to the client unpersisted; saving it is a separate create.
type GeneratedPost struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// TextGenerator produces AI post drafts from a user prompt. The backing
// service is an opaque third-party API.
type TextGenerator interface {
	GeneratePost(ctx context.Context, prompt string) (*GeneratedPost, error)
}
