package engine

// WithTracker runs one unit of work against the stored tree: it loads the
// tracker, runs fn, and saves the tracker back on every exit path, including
// error returns and panics. In-memory mutations are never silently dropped.
//
// A save error is only surfaced when fn itself succeeded; fn's error wins
// otherwise.
func (s *Store) WithTracker(fn func(*Tracker) error) (err error) {
	tracker, err := s.Load()
	if err != nil {
		return err
	}

	defer func() {
		if saveErr := s.Save(tracker); saveErr != nil && err == nil {
			err = saveErr
		}
	}()

	return fn(tracker)
}
