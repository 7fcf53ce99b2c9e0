package usecase

// AggregateCredentials is exported for testing
var AggregateCredentials = aggregateCredentials

// AnnotateApps is exported for testing
var AnnotateApps = annotateApps

// ApplyFilters is exported for testing
var ApplyFilters = applyFilters
