package auth

import "context"

type trainerIDCtxKey struct{}

func ContextWithTrainerID(ctx context.Context, trainerID int) context.Context {
	return context.WithValue(ctx, trainerIDCtxKey{}, trainerID)
}

// TrainerIDFromContext returns the id of the authenticated trainer,
// previously injected by the auth middleware.
func TrainerIDFromContext(ctx context.Context) (int, bool) {
	trainerID, ok := ctx.Value(trainerIDCtxKey{}).(int)
	return trainerID, ok
}
