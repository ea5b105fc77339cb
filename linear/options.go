package linear

// Option is a function that configures LinearRegression
type Option func(*LinearRegression)

// WithFitMethod selects how Fit estimates the parameters.
func WithFitMethod(method FitMethod) Option {
	return func(lr *LinearRegression) {
		lr.method = method
	}
}

// WithLearningRate sets the gradient descent step size.
func WithLearningRate(rate float64) Option {
	return func(lr *LinearRegression) {
		lr.learningRate = rate
	}
}

// WithIterations sets the number of gradient descent steps.
func WithIterations(n int) Option {
	return func(lr *LinearRegression) {
		lr.iterations = n
	}
}

// WithRandomState seeds the random initialization of gradient descent so runs
// are reproducible.
func WithRandomState(seed uint64) Option {
	return func(lr *LinearRegression) {
		lr.seed = seed
		lr.seeded = true
	}
}
