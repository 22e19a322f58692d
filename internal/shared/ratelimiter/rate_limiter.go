package ratelimiter

import (
	"sync"
	"time"
)

// sweepThreshold を超えるキーを保持したら期限切れのウィンドウを掃除します。
const sweepThreshold = 1024

// Limiter は、キー（クライアントIPなど）ごとに操作の頻度を制限するインターフェースです。
type Limiter interface {
	// Allow は操作を許可するかを返します。拒否した場合は次のウィンドウまでの残り時間も返します。
	Allow(key string) (bool, time.Duration)
}

type window struct {
	count int
	start time.Time
}

// RateLimiterは、固定ウィンドウ方式でキーごとの操作回数を制限します。
// 複数のゴルーチンから安全に利用できます。
type RateLimiter struct {
	mu       sync.Mutex
	limit    int           // ウィンドウあたりの上限
	interval time.Duration // どの単位でリセットするか
	windows  map[string]*window
	now      func() time.Time
}

var _ Limiter = (*RateLimiter)(nil)

// NewRateLimiterは新しいRateLimiterのインスタンスを生成します。
func NewRateLimiter(limit int, interval time.Duration) *RateLimiter {
	return &RateLimiter{
		limit:    limit,
		interval: interval,
		windows:  make(map[string]*window),
		now:      time.Now,
	}
}

// Allowはキーの上限に達しているかを確認し、達していなければカウントを進めます。
// 待機はせず、上限超過は呼び出し側で拒否します。
func (rl *RateLimiter) Allow(key string) (bool, time.Duration) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	w, ok := rl.windows[key]
	// interval を過ぎたらカウントリセット
	if !ok || now.Sub(w.start) >= rl.interval {
		if len(rl.windows) >= sweepThreshold {
			rl.sweep(now)
		}
		w = &window{start: now}
		rl.windows[key] = w
	}

	if w.count >= rl.limit {
		return false, rl.interval - now.Sub(w.start)
	}
	w.count++
	return true, 0
}

func (rl *RateLimiter) sweep(now time.Time) {
	for k, w := range rl.windows {
		if now.Sub(w.start) >= rl.interval {
			delete(rl.windows, k)
		}
	}
}
