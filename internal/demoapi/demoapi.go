// Package demoapi simulates the slow backend used by the hooks exercise.
package demoapi

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/five82/gridlab/internal/resource"
)

// DefaultLatency is the simulated round-trip time.
const DefaultLatency = time.Second

// ErrInvalidUser is returned for non-positive user IDs.
var ErrInvalidUser = errors.New("invalid user id")

// UserProfile is the payload of the profile endpoint.
type UserProfile struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Bio   string `json:"bio"`
}

// Todo is one entry of the todo endpoint.
type Todo struct {
	ID        int    `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

const todosPerUser = 5

// Client serves simulated responses after a fixed latency.
type Client struct {
	latency time.Duration

	mu  sync.Mutex
	rng *rand.Rand
}

// NewClient returns a Client. A negative latency is treated as zero.
func NewClient(latency time.Duration, rng *rand.Rand) *Client {
	if latency < 0 {
		latency = 0
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Client{latency: latency, rng: rng}
}

// Latency returns the simulated delay.
func (c *Client) Latency() time.Duration {
	return c.latency
}

// FetchUserProfile returns the profile for userID.
func (c *Client) FetchUserProfile(ctx context.Context, userID int) (UserProfile, error) {
	return resource.Delayed(c.latency, c.profile)(ctx, userID)
}

// FetchTodos returns the todo list for userID.
func (c *Client) FetchTodos(ctx context.Context, userID int) ([]Todo, error) {
	return resource.Delayed(c.latency, c.todos)(ctx, userID)
}

func (c *Client) profile(_ context.Context, userID int) (UserProfile, error) {
	if userID <= 0 {
		return UserProfile{}, fmt.Errorf("profile %d: %w", userID, ErrInvalidUser)
	}
	return UserProfile{
		ID:    userID,
		Name:  fmt.Sprintf("User %d", userID),
		Email: fmt.Sprintf("user%d@example.com", userID),
		Bio:   "This is a mock user profile",
	}, nil
}

func (c *Client) todos(_ context.Context, userID int) ([]Todo, error) {
	if userID <= 0 {
		return nil, fmt.Errorf("todos %d: %w", userID, ErrInvalidUser)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	todos := make([]Todo, todosPerUser)
	for i := range todos {
		todos[i] = Todo{
			ID:        i + 1,
			Title:     fmt.Sprintf("Todo %d for user %d", i+1, userID),
			Completed: c.rng.Float64() > 0.5,
		}
	}
	return todos, nil
}
