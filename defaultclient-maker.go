package main

import (
	"context"
	"net/http"
)

type DefaultClientMaker struct{}

func (cm *DefaultClientMaker) MakeClient(ctx context.Context) (*http.Client, error) {
	return http.DefaultClient, nil
}
