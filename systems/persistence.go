package systems

import (
	"encoding/json"
	"log"

	"github.com/quasilyte/gdata"
)

// SavedProgress represents the progress data stored on disk
type SavedProgress struct {
	LastLevel    int     `json:"lastLevel"`
	BestSurvival float64 `json:"bestSurvival"` // longest level run in seconds
	Spawned      int     `json:"spawned"`      // enemies spawned across all runs
}

// ItemStore is the subset of gdata.Manager used for progress storage.
type ItemStore interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

const progressKey = "progress"

var store ItemStore

// InitPersistence initializes the gdata manager for progress storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "jfighter",
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	store = m
	return nil
}

// UseStore replaces the backing store, nil disables persistence.
func UseStore(s ItemStore) {
	store = s
}

// LoadProgress loads progress from disk. It returns nil without an error
// when persistence is disabled or nothing was saved yet.
func LoadProgress() (*SavedProgress, error) {
	if store == nil {
		return nil, nil
	}

	data, err := store.LoadItem(progressKey)
	if err != nil {
		log.Printf("Warning: Could not load progress: %v", err)
		return nil, nil
	}
	if data == nil {
		return nil, nil
	}

	var progress SavedProgress
	if err := json.Unmarshal(data, &progress); err != nil {
		log.Printf("Warning: Could not parse saved progress: %v", err)
		return nil, err
	}
	return &progress, nil
}

// SaveProgress saves progress to disk
func SaveProgress(p *SavedProgress) error {
	if store == nil {
		return nil
	}

	data, err := json.Marshal(p)
	if err != nil {
		log.Printf("Warning: Could not serialize progress: %v", err)
		return err
	}

	if err := store.SaveItem(progressKey, data); err != nil {
		log.Printf("Warning: Could not save progress: %v", err)
		return err
	}
	return nil
}

// RecordRun folds a finished level run into the saved progress. Unreadable
// progress is replaced by the run alone.
func RecordRun(level int, survived float64, spawned int) error {
	progress, err := LoadProgress()
	if err != nil {
		log.Printf("Warning: Discarding unreadable progress")
	}
	if progress == nil {
		progress = &SavedProgress{}
	}

	progress.LastLevel = level
	progress.Spawned += spawned
	if survived > progress.BestSurvival {
		progress.BestSurvival = survived
	}
	return SaveProgress(progress)
}
