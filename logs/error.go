package logs

import (
	"context"
	"errors"
	"fmt"
)

// WrapSpan joins the span of ctx, if any, into err.
func WrapSpan(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}
	v := ctx.Value(SpanKey)
	if v == nil {
		return err
	}
	return errors.Join(err, fmt.Errorf("span: %s", v.(Span)))
}
