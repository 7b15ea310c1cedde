package extractive

import (
	"fmt"

	"docsum/internal/domain/entity"
	"docsum/internal/usecase/summarize"
)

// New returns the ranker for an extractive method.
func New(method entity.Method) (summarize.Ranker, error) {
	switch method {
	case entity.MethodLSA:
		return NewLSA(), nil
	case entity.MethodLuhn:
		return NewLuhn(), nil
	case entity.MethodTextRank:
		return NewTextRank(), nil
	default:
		return nil, fmt.Errorf("%w: %q is not an extractive method", entity.ErrConfiguration, method)
	}
}
