package loan

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Issue runs the issue saga: validate account, validate item stock,
	// record the loan, then decrement the remote stock.
	Issue(ctx context.Context, input IssueInput) (IssueOutput, error)
	// Return runs the return saga: load, guard, set the return date, then
	// increment the remote stock.
	Return(ctx context.Context, id int64) (ReturnOutput, error)

	Detail(ctx context.Context, id int64) (DetailOutput, error)
	List(ctx context.Context, input ListInput) (ListOutput, error)
}
