package cache

import (
	"context"
	"io"
	"log"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

type payload struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func newTestRedis(t *testing.T) (*Redis, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	r := NewRedisWithClient(client, time.Minute, log.New(io.Discard, "", 0))
	t.Cleanup(func() { _ = r.Close() })
	return r, mr
}

func TestRedisGetSetJSONRoundTrip(t *testing.T) {
	r, _ := newTestRedis(t)
	ctx := context.Background()

	var out payload
	hit, err := r.GetJSON(ctx, "k", &out)
	if err != nil || hit {
		t.Fatalf("empty cache: hit=%v err=%v", hit, err)
	}

	in := payload{Name: "backend engineer", Count: 3}
	if err := r.SetJSON(ctx, "k", in, time.Minute); err != nil {
		t.Fatalf("SetJSON: %v", err)
	}

	hit, err = r.GetJSON(ctx, "k", &out)
	if err != nil || !hit {
		t.Fatalf("after set: hit=%v err=%v", hit, err)
	}
	if out != in {
		t.Fatalf("round trip = %+v, want %+v", out, in)
	}
}

func TestRedisSetJSONDefaultTTL(t *testing.T) {
	r, mr := newTestRedis(t)
	ctx := context.Background()

	if err := r.SetJSON(ctx, "k", payload{Name: "x"}, 0); err != nil {
		t.Fatalf("SetJSON: %v", err)
	}
	if ttl := mr.TTL("k"); ttl != time.Minute {
		t.Fatalf("TTL = %v, want default %v", ttl, time.Minute)
	}

	mr.FastForward(2 * time.Minute)
	var out payload
	hit, err := r.GetJSON(ctx, "k", &out)
	if err != nil || hit {
		t.Fatalf("expired key: hit=%v err=%v", hit, err)
	}
}

func TestRedisDelete(t *testing.T) {
	r, _ := newTestRedis(t)
	ctx := context.Background()

	if err := r.SetJSON(ctx, "k", payload{Name: "x"}, time.Minute); err != nil {
		t.Fatalf("SetJSON: %v", err)
	}
	if err := r.Delete(ctx, "k"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	var out payload
	if hit, _ := r.GetJSON(ctx, "k", &out); hit {
		t.Fatalf("key survived delete")
	}
}

func TestRedisDeleteByPattern(t *testing.T) {
	r, _ := newTestRedis(t)
	ctx := context.Background()

	for _, k := range []string{"jobs:match:a", "jobs:match:b", "profiles:match:a"} {
		if err := r.SetJSON(ctx, k, payload{Name: k}, time.Minute); err != nil {
			t.Fatalf("SetJSON %s: %v", k, err)
		}
	}
	if err := r.DeleteByPattern(ctx, "jobs:match:*"); err != nil {
		t.Fatalf("DeleteByPattern: %v", err)
	}

	var out payload
	if hit, _ := r.GetJSON(ctx, "jobs:match:a", &out); hit {
		t.Fatalf("jobs key survived pattern delete")
	}
	if hit, _ := r.GetJSON(ctx, "profiles:match:a", &out); !hit {
		t.Fatalf("unrelated key was deleted")
	}
}

func TestRedisUnavailableBypasses(t *testing.T) {
	var r *Redis

	var out payload
	hit, err := r.GetJSON(context.Background(), "k", &out)
	if hit || err != nil {
		t.Fatalf("nil cache GetJSON: hit=%v err=%v", hit, err)
	}
	if err := r.SetJSON(context.Background(), "k", payload{}, time.Minute); err != nil {
		t.Fatalf("nil cache SetJSON: %v", err)
	}
	if err := r.Delete(context.Background(), "k"); err != nil {
		t.Fatalf("nil cache Delete: %v", err)
	}
	if err := r.Ping(context.Background()); err == nil {
		t.Fatalf("nil cache Ping should error")
	}
}
