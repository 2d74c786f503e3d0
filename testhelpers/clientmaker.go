package testhelpers

import (
	"context"
	"net/http"
	"testing"
)

type ClientMaker struct {
	MakeClientFunc func(ctx context.Context) (*http.Client, error)
}

func NewClientMaker(t *testing.T) *ClientMaker {
	return &ClientMaker{
		MakeClientFunc: func(ctx context.Context) (*http.Client, error) {
			t.Error("MakeClient should not be called")
			return nil, nil
		},
	}
}

func (cm *ClientMaker) MakeClient(ctx context.Context) (*http.Client, error) {
	return cm.MakeClientFunc(ctx)
}

type RoundTripper struct {
	RoundTripFunc func(*http.Request) (*http.Response, error)
}

func (rt *RoundTripper) RoundTrip(r *http.Request) (*http.Response, error) {
	return rt.RoundTripFunc(r)
}
