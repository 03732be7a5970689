package notification

import (
	"context"
)

// Invoker calls a remote function by name.
type Invoker interface {
	Invoke(ctx context.Context, name string, in, out any) error
}

// FunctionNotifier forwards order emails to the send-order-emails function.
type FunctionNotifier struct {
	fn Invoker
}

func NewFunctionNotifier(fn Invoker) *FunctionNotifier {
	return &FunctionNotifier{fn: fn}
}

func (n *FunctionNotifier) SendOrderEmails(ctx context.Context, data *OrderData) (Result, error) {
	var res Result
	if err := n.fn.Invoke(ctx, "send-order-emails", Request{OrderData: data}, &res); err != nil {
		return Result{}, err
	}
	return res, nil
}
