package port

import "gonum.org/v1/gonum/mat"

// FeatureTransform is estimated on training data and then maps feature
// matrices (documents x terms) into another feature space.
type FeatureTransform interface {
	Estimate(train *mat.Dense, labels []string) error

	Transform(data *mat.Dense) (*mat.Dense, error)
}
