package user

import "context"

// Account is the signed-in state of a single client. Build it with
// OpenAccount when the client starts and call SignOut to tear it down.
type Account struct {
	store   Store
	current *User
}

func OpenAccount(ctx context.Context, store Store) (*Account, error) {
	u, err := store.Load(ctx)
	if err != nil {
		return nil, err
	}
	return &Account{store: store, current: u}, nil
}

// Current returns the signed-in user or nil.
func (a *Account) Current() *User {
	if a.current == nil {
		return nil
	}
	cp := *a.current
	return &cp
}

func (a *Account) Active() bool {
	return a.current != nil
}

func (a *Account) SignIn(ctx context.Context, u *User) error {
	if u == nil {
		return ErrInvalidInput
	}
	if err := a.store.Save(ctx, u); err != nil {
		return err
	}
	cp := *u
	a.current = &cp
	return nil
}

func (a *Account) SignOut(ctx context.Context) error {
	a.current = nil
	return a.store.Clear(ctx)
}

func (a *Account) UpdateSubscription(ctx context.Context, status SubscriptionStatus) error {
	if a.current == nil {
		return ErrNotSignedIn
	}
	if !status.Valid() {
		return ErrInvalidInput
	}
	updated := *a.current
	updated.SubscriptionStatus = status
	return a.SignIn(ctx, &updated)
}
