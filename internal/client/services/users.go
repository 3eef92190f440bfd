package services

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/userdesk/internal/client/client"
	"github.com/dmitrijs2005/userdesk/internal/client/models"
	"github.com/dmitrijs2005/userdesk/internal/logging"
	"golang.org/x/sync/singleflight"
)

// UserService defines the roster operations used by the CLI.
type UserService interface {
	List(ctx context.Context) (Result[[]models.User], error)
	Get(ctx context.Context, id string) (Result[*models.User], error)
	Update(ctx context.Context, id string, patch models.UpdateUserData) (Result[*models.User], error)
	Delete(ctx context.Context, id string) (Result[string], error)
	ClearSelected()

	Users() []models.User
	Selected() *models.User
	Snapshot() models.Directory
}

// DirectoryStore is the concrete UserService. Concurrent List calls, and Get
// calls for the same id, share one request.
type DirectoryStore struct {
	client client.Client
	logger logging.Logger
	reads  singleflight.Group

	mu       sync.RWMutex
	users    []models.User
	selected *models.User

	loading  int
	updating int
	deleting int
}

var _ UserService = (*DirectoryStore)(nil)

func NewDirectoryStore(c client.Client, logger logging.Logger) *DirectoryStore {
	return &DirectoryStore{client: c, logger: logger}
}

func (d *DirectoryStore) track(counter *int) func() {
	d.mu.Lock()
	*counter++
	d.mu.Unlock()

	return func() {
		d.mu.Lock()
		*counter--
		d.mu.Unlock()
	}
}

// shared runs fn once for all concurrent callers of key. The request does not
// inherit any caller's cancellation; a caller whose ctx ends stops waiting
// and gets ctx.Err() while the others keep their result.
func (d *DirectoryStore) shared(ctx context.Context, key string, fn func(context.Context) (any, error)) (any, error) {
	ch := d.reads.DoChan(key, func() (any, error) {
		return fn(context.WithoutCancel(ctx))
	})
	select {
	case r := <-ch:
		return r.Val, r.Err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// List replaces the roster with the server's.
func (d *DirectoryStore) List(ctx context.Context) (Result[[]models.User], error) {
	const op = "list users"

	done := d.track(&d.loading)
	defer done()

	v, err := d.shared(ctx, "users", func(ctx context.Context) (any, error) {
		users, err := d.client.ListUsers(ctx)
		if err != nil {
			return nil, err
		}
		d.mu.Lock()
		d.users = models.CloneUsers(users)
		d.mu.Unlock()
		return users, nil
	})
	if err != nil {
		d.logger.Warn(ctx, "fetch users failed", "error", err)
		return Result[[]models.User]{}, failure(op, "Failed to fetch users", err)
	}

	users := v.([]models.User)
	d.logger.Debug(ctx, "users fetched", "count", len(users))
	return Result[[]models.User]{Value: models.CloneUsers(users), Message: "Users fetched successfully"}, nil
}

// Get loads one user into the selected slot. The roster is not touched.
func (d *DirectoryStore) Get(ctx context.Context, id string) (Result[*models.User], error) {
	const op, failMsg = "get user", "Failed to fetch user"

	if id == "" {
		return Result[*models.User]{}, failure(op, failMsg, ErrInvalidID)
	}

	v, err := d.shared(ctx, "user:"+id, func(ctx context.Context) (any, error) {
		user, err := d.client.GetUser(ctx, id)
		if err != nil {
			return nil, err
		}
		d.mu.Lock()
		d.selected = user.Clone()
		d.mu.Unlock()
		return user, nil
	})
	if err != nil {
		d.logger.Warn(ctx, "fetch user failed", "id", id, "error", err)
		return Result[*models.User]{}, failure(op, failMsg, err)
	}

	return Result[*models.User]{Value: v.(*models.User).Clone(), Message: "User fetched successfully"}, nil
}

// Update patches a user. The matching roster entry is replaced in place and
// the selected user follows when it has the same id.
func (d *DirectoryStore) Update(ctx context.Context, id string, patch models.UpdateUserData) (Result[*models.User], error) {
	const op, failMsg = "update user", "Failed to update user"

	if id == "" {
		return Result[*models.User]{}, failure(op, failMsg, ErrInvalidID)
	}

	done := d.track(&d.updating)
	defer done()

	user, err := d.client.UpdateUser(ctx, id, patch)
	if err != nil {
		d.logger.Warn(ctx, "update user failed", "id", id, "error", err)
		return Result[*models.User]{}, failure(op, failMsg, err)
	}

	d.mu.Lock()
	for i := range d.users {
		if d.users[i].ID == id {
			d.users[i] = *user.Clone()
		}
	}
	if d.selected != nil && d.selected.ID == id {
		d.selected = user.Clone()
	}
	d.mu.Unlock()

	d.logger.Info(ctx, "user updated", "id", id)
	return Result[*models.User]{Value: user.Clone(), Message: "User updated successfully"}, nil
}

// Delete removes a user. On success the roster entry goes away and a matching
// selected user is cleared.
func (d *DirectoryStore) Delete(ctx context.Context, id string) (Result[string], error) {
	const op, failMsg = "delete user", "Failed to delete user"

	if id == "" {
		return Result[string]{}, failure(op, failMsg, ErrInvalidID)
	}

	done := d.track(&d.deleting)
	defer done()

	resp, err := d.client.DeleteUser(ctx, id)
	if err != nil {
		d.logger.Warn(ctx, "delete user failed", "id", id, "error", err)
		return Result[string]{}, failure(op, failMsg, err)
	}

	d.mu.Lock()
	kept := d.users[:0]
	for _, u := range d.users {
		if u.ID != id {
			kept = append(kept, u)
		}
	}
	d.users = kept
	if d.selected != nil && d.selected.ID == id {
		d.selected = nil
	}
	d.mu.Unlock()

	msg := "User deleted successfully"
	if resp != nil && resp.Message != "" {
		msg = resp.Message
	}
	d.logger.Info(ctx, "user deleted", "id", id)
	return Result[string]{Value: id, Message: msg}, nil
}

func (d *DirectoryStore) ClearSelected() {
	d.mu.Lock()
	d.selected = nil
	d.mu.Unlock()
}

func (d *DirectoryStore) Users() []models.User {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return models.CloneUsers(d.users)
}

func (d *DirectoryStore) Selected() *models.User {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.selected.Clone()
}

func (d *DirectoryStore) Snapshot() models.Directory {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return models.Directory{
		Users:        models.CloneUsers(d.users),
		Selected:     d.selected.Clone(),
		LoadingUsers: d.loading > 0,
		UpdatingUser: d.updating > 0,
		DeletingUser: d.deleting > 0,
	}
}
