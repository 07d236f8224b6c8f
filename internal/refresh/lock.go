package refresh

import "sync"

type triple struct {
	userID   string
	provider string
	purpose  string
}

// keyedMutex — мьютекс на ключ. Запись удаляется, когда её никто не держит и не ждёт.
type keyedMutex struct {
	mu    sync.Mutex
	locks map[triple]*refLock
}

type refLock struct {
	mu   sync.Mutex
	refs int
}

// Lock захватывает мьютекс ключа и возвращает функцию освобождения.
func (k *keyedMutex) Lock(key triple) func() {
	k.mu.Lock()
	if k.locks == nil {
		k.locks = make(map[triple]*refLock)
	}

	l, ok := k.locks[key]
	if !ok {
		l = &refLock{}
		k.locks[key] = l
	}
	l.refs++
	k.mu.Unlock()

	l.mu.Lock()

	return func() {
		l.mu.Unlock()

		k.mu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(k.locks, key)
		}
		k.mu.Unlock()
	}
}

func (k *keyedMutex) size() int {
	k.mu.Lock()
	defer k.mu.Unlock()

	return len(k.locks)
}
