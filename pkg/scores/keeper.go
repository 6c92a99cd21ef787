package scores

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"
)

// Result describes a saved game, delivered to the OnResult callback
type Result struct {
	Record    Record
	NewRecord bool
	Best      int
	Top       []Record
	Err       error // set when the store rejected the record
}

// Keeper saves final scores in the background so a slow or broken store
// never holds up the game loop. It also caches the list for the HUD.
type Keeper struct {
	store       Store
	rankingSize int
	now         func() time.Time

	submitChan chan Record
	wg         sync.WaitGroup

	// storeMu orders store writes with the cache update that follows them
	storeMu sync.Mutex

	mu       sync.Mutex
	closed   bool
	records  []Record
	onResult func(Result)
}

// NewKeeper loads the current list from store and starts the writer
func NewKeeper(ctx context.Context, store Store, rankingSize int) (*Keeper, error) {
	records, err := store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load scores: %w", err)
	}

	k := &Keeper{
		store:       store,
		rankingSize: rankingSize,
		now:         time.Now,
		submitChan:  make(chan Record, 64),
		records:     records,
	}

	k.wg.Add(1)
	go k.writeLoop()

	return k, nil
}

// OnResult sets a callback run on the writer goroutine after every save
func (k *Keeper) OnResult(fn func(Result)) {
	k.mu.Lock()
	k.onResult = fn
	k.mu.Unlock()
}

// Submit queues a final score. It never blocks; when the queue is full the
// score is dropped and logged.
func (k *Keeper) Submit(score int) {
	k.mu.Lock()
	if k.closed {
		k.mu.Unlock()
		return
	}
	rec := Record{Score: score, Date: k.now()}
	select {
	case k.submitChan <- rec:
	default:
		log.Printf("score queue full, dropping score %d", score)
	}
	k.mu.Unlock()
}

// Ranking returns the best score and the top list from the cache
func (k *Keeper) Ranking() (best int, top []Record) {
	k.mu.Lock()
	defer k.mu.Unlock()
	return Best(k.records), Top(k.records, k.rankingSize)
}

// IsNewRecord reports whether score tops every saved game. The answer is
// the same before and after score itself has been saved.
func (k *Keeper) IsNewRecord(score int) bool {
	k.mu.Lock()
	defer k.mu.Unlock()
	all := append(append([]Record(nil), k.records...), Record{Score: score})
	return IsNewRecord(score, all)
}

// Clear removes every record from the store and the cache
func (k *Keeper) Clear(ctx context.Context) error {
	k.storeMu.Lock()
	defer k.storeMu.Unlock()

	if err := k.store.Clear(ctx); err != nil {
		return err
	}
	k.mu.Lock()
	k.records = nil
	k.mu.Unlock()
	return nil
}

// Close waits for queued scores to be written. It does not close the store.
func (k *Keeper) Close() {
	k.mu.Lock()
	if k.closed {
		k.mu.Unlock()
		return
	}
	k.closed = true
	close(k.submitChan)
	k.mu.Unlock()

	k.wg.Wait()
}

func (k *Keeper) writeLoop() {
	defer k.wg.Done()

	for rec := range k.submitChan {
		k.storeMu.Lock()
		err := k.store.Append(context.Background(), rec)
		if err != nil {
			log.Printf("failed to save score %d: %v", rec.Score, err)
		}

		k.mu.Lock()
		k.records = append(k.records, rec)
		res := Result{
			Record:    rec,
			NewRecord: IsNewRecord(rec.Score, k.records),
			Best:      Best(k.records),
			Top:       Top(k.records, k.rankingSize),
			Err:       err,
		}
		fn := k.onResult
		k.mu.Unlock()
		k.storeMu.Unlock()

		if fn != nil {
			fn(res)
		}
	}
}
