package interfaces

import (
	"consig_origination/internal/domain/entities"
	"context"
)

//go:generate mockgen -source=parameters_provider_interface.go -destination=mocks/parameters_provider_interface_mock.go -package=mock_interfaces

// IParametersProvider gives read access to the back office parameters of a product.
type IParametersProvider interface {
	Get(ctx context.Context, product entities.ProductType) (entities.BackofficeParameters, bool, error)
}
