package validators

import "context"

// Validator is a single rule or a tree of rules over one model.
type Validator interface {

	// Validate records violations in sink. A returned error aborts the
	// whole validation call and is never a business-rule violation.
	Validate(ctx context.Context, sink *ErrorSink) error
}

// ValidatorFunc adapts a function to Validator.
type ValidatorFunc func(ctx context.Context, sink *ErrorSink) error

func (f ValidatorFunc) Validate(ctx context.Context, sink *ErrorSink) error {
	return f(ctx, sink)
}

// runAll runs validators in order and stops at the first fatal error.
func runAll(ctx context.Context, sink *ErrorSink, validators ...Validator) error {
	for _, v := range validators {
		if v == nil {
			continue
		}
		if err := v.Validate(ctx, sink); err != nil {
			return err
		}
	}
	return nil
}
