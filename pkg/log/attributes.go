// Package log defines standard attribute keys for machine learning operations.
//
// Using these keys for every log record keeps the output analyzable: records
// from different components can be filtered and joined on the same fields.
// Keys follow a hierarchical naming convention ("model.name", "data.samples").

package log

// Model and operation context.
// These attributes identify the model type and the operation being performed.
const (
	// ModelNameKey identifies the type of machine learning model.
	// Examples: "LinearRegression", "OneHotEncoder"
	ModelNameKey = "model.name"

	// OperationKey specifies the operation being performed.
	// Standard values: "fit", "predict", "transform", "fit_transform", "score"
	OperationKey = "ml.operation"

	// ComponentKey identifies which package is performing the operation.
	// Examples: "linear.regression", "preprocessing.encoder"
	ComponentKey = "ml.component"
)

// Data shape and characteristics.
const (
	// SamplesKey is the number of samples (rows) in the dataset.
	SamplesKey = "data.samples"

	// FeaturesKey is the number of features (columns) in the dataset.
	// Important for debugging shape mismatches.
	FeaturesKey = "data.features"

	// TargetsKey is the number of target variables for supervised learning.
	TargetsKey = "data.targets"

	// DataTypeKey is the type of data being processed.
	// Examples: "float64", "categorical", "mixed"
	DataTypeKey = "data.type"
)

// Training and evaluation metrics.
const (
	// LossKey is the loss value at a point during training.
	LossKey = "metrics.loss"

	// R2ScoreKey is the R² coefficient of determination for regression.
	R2ScoreKey = "metrics.r2_score"

	// IterationKey is the current iteration of an iterative algorithm.
	IterationKey = "training.iteration"

	// EpochKey is the current epoch during training. For full-batch gradient
	// descent every iteration is one epoch.
	EpochKey = "training.epoch"
)

// Error and warning context.
const (
	// ErrorCodeKey is a structured error code for programmatic handling.
	// Examples: "DIMENSION_MISMATCH", "NOT_FITTED"
	ErrorCodeKey = "error.code"

	// StacktraceKey carries stack trace information extracted from errors.
	StacktraceKey = "error.stacktrace"
)

// Hyperparameters and configuration.
const (
	// LearningRateKey is the learning rate of gradient-based training.
	LearningRateKey = "hyperparams.learning_rate"

	// IterationsKey is the configured number of training iterations.
	IterationsKey = "hyperparams.iterations"

	// MethodKey is the fitting strategy in use.
	// Values: "least_squares", "gradient_descent"
	MethodKey = "hyperparams.method"

	// RandomSeedKey is the random seed, recorded for reproducibility.
	RandomSeedKey = "config.random_seed"
)

// Standard attribute value constants for common operations.
const (
	// Standard ML operations
	OperationFit          = "fit"
	OperationPredict      = "predict"
	OperationTransform    = "transform"
	OperationFitTransform = "fit_transform"
	OperationScore        = "score"

	// Standard error codes
	ErrorNotFitted         = "NOT_FITTED"
	ErrorDimensionMismatch = "DIMENSION_MISMATCH"
	ErrorEmptyData         = "EMPTY_DATA"
	ErrorInvalidInput      = "INVALID_INPUT"
	ErrorSingularMatrix    = "SINGULAR_MATRIX"
	ErrorNumericalUnstable = "NUMERICAL_INSTABILITY"
)
