package main

import (
	"context"
	"fmt"

	"github.com/a-h/meetingsummarizer"
)

type VersionCommand struct {
}

func (c VersionCommand) Run(ctx context.Context) (err error) {
	fmt.Println(meetingsummarizer.Version)
	return nil
}
