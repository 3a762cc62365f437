// Package insight turns a product record, and optionally an image, into
// an AI-generated quality assessment with a fixed degraded fallback.
package insight

import (
	"context"
	"time"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// ModelInvoker calls the external generative model with a textual
	// prompt and at most one inline image, returning the model's raw
	// textual response.
	ModelInvoker interface {
		Invoke(ctx context.Context, prompt string, image *Image) (string, error)
	}

	// Metrics records insight generation outcomes.
	Metrics interface {
		ObserveGenerate(degraded bool, started time.Time)
	}
)

// Image is an in-memory image attachment with its declared media type.
// It lives only for the duration of one Generate call; the transport
// layer bounds its size before the pipeline is invoked.
type Image struct {
	Bytes    []byte
	MIMEType string
}
