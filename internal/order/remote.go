package order

import (
	"context"
	"errors"
)

// Invoker calls a remote function by name.
type Invoker interface {
	Invoke(ctx context.Context, name string, in, out any) error
}

// RemoteCreator submits orders to the create-order function.
type RemoteCreator struct {
	fn Invoker
}

func NewRemoteCreator(fn Invoker) *RemoteCreator {
	return &RemoteCreator{fn: fn}
}

func (r *RemoteCreator) CreateOrder(ctx context.Context, sub Submission) (Result, error) {
	var res Result
	if err := r.fn.Invoke(ctx, "create-order", sub, &res); err != nil {
		return Result{}, err
	}
	if res.Error != "" {
		return Result{}, errors.New(res.Error)
	}
	if !res.Success || res.OrderID == "" {
		return Result{}, errors.New("failed to create order")
	}
	return res, nil
}
