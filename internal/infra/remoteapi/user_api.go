package remoteapi

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"autoparts/internal/domain/entity"
	"autoparts/internal/domain/service"
	"autoparts/internal/errors"
)

const (
	usersPath   = "/users"
	profilePath = "/users/profile"
	statsPath   = "/users/stats"
)

var _ service.UserAPI = (*UserAPI)(nil)

// UserAPI wraps the remote user resource. Every call is signed.
type UserAPI struct {
	client *Client
}

// NewUserAPI creates the adapter.
func NewUserAPI(client *Client) service.UserAPI {
	return &UserAPI{client: client}
}

func (a *UserAPI) GetProfile(ctx context.Context, store service.TokenStore) (*entity.User, error) {
	return a.user(ctx, store, http.MethodGet, profilePath, nil)
}

func (a *UserAPI) UpdateProfile(ctx context.Context, store service.TokenStore, update *entity.ProfileUpdate) (*entity.User, error) {
	return a.user(ctx, store, http.MethodPut, profilePath, update)
}

func (a *UserAPI) ListUsers(ctx context.Context, store service.TokenStore, filter *entity.UserFilter) (*entity.UserPage, error) {
	var page entity.UserPage
	if err := a.client.Do(ctx, store, Request{
		Method: http.MethodGet,
		Path:   usersPath,
		Query:  filterQuery(filter),
	}, &page); err != nil {
		return nil, errors.WithStack(err)
	}

	return &page, nil
}

func (a *UserAPI) GetUser(ctx context.Context, store service.TokenStore, id string) (*entity.User, error) {
	return a.user(ctx, store, http.MethodGet, userPath(id), nil)
}

func (a *UserAPI) CreateUser(ctx context.Context, store service.TokenStore, user *entity.NewUser) (*entity.User, error) {
	return a.user(ctx, store, http.MethodPost, usersPath, user)
}

func (a *UserAPI) UpdateUser(ctx context.Context, store service.TokenStore, id string, update *entity.UserUpdate) (*entity.User, error) {
	return a.user(ctx, store, http.MethodPut, userPath(id), update)
}

func (a *UserAPI) DeleteUser(ctx context.Context, store service.TokenStore, id string) error {
	return errors.WithStack(a.client.Do(ctx, store, Request{
		Method: http.MethodDelete,
		Path:   userPath(id),
	}, nil))
}

func (a *UserAPI) GetStats(ctx context.Context, store service.TokenStore) (*entity.UserStats, error) {
	var stats entity.UserStats
	if err := a.client.Do(ctx, store, Request{
		Method: http.MethodGet,
		Path:   statsPath,
	}, &stats); err != nil {
		return nil, errors.WithStack(err)
	}

	return &stats, nil
}

func (a *UserAPI) user(ctx context.Context, store service.TokenStore, method, path string, body any) (*entity.User, error) {
	var user entity.User
	if err := a.client.Do(ctx, store, Request{
		Method: method,
		Path:   path,
		Body:   body,
	}, &user); err != nil {
		return nil, errors.WithStack(err)
	}

	return &user, nil
}

func userPath(id string) string {
	return usersPath + "/" + url.PathEscape(id)
}

// filterQuery renders only the filter fields that are set.
func filterQuery(filter *entity.UserFilter) url.Values {
	query := url.Values{}
	if filter == nil {
		return query
	}

	if filter.Role != "" {
		query.Set("role", filter.Role.String())
	}
	if filter.IsActive != nil {
		query.Set("isActive", strconv.FormatBool(*filter.IsActive))
	}
	if filter.Search != "" {
		query.Set("search", filter.Search)
	}
	if filter.Page > 0 {
		query.Set("page", strconv.Itoa(filter.Page))
	}
	if filter.Limit > 0 {
		query.Set("limit", strconv.Itoa(filter.Limit))
	}
	if filter.SortBy != "" {
		query.Set("sortBy", filter.SortBy)
	}
	if filter.SortOrder != "" {
		query.Set("sortOrder", filter.SortOrder)
	}

	return query
}
