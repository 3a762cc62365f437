// Package transport exposes the REST handlers for the provenance API.
package transport

import (
	"context"

	"github.com/verifresh-labs/verifresh-backend/internal/insight"
	"github.com/verifresh-labs/verifresh-backend/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// ProvenanceLedger is the ledger client surface the handlers sequence.
	ProvenanceLedger interface {
		CreateProduct(ctx context.Context, productID uint64, name, farmName string) (string, error)
		AddLog(ctx context.Context, productID uint64, status, location string) (string, error)
		FetchProduct(ctx context.Context, productID uint64) (*model.Product, error)
	}

	// InsightGenerator produces the advisory quality assessment for a
	// fetched record. It never fails; failures surface as the degraded
	// result variant.
	InsightGenerator interface {
		Generate(ctx context.Context, product *model.Product, image *insight.Image) insight.Result
	}
)
