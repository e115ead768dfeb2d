package transfer

import "testing"

func TestLockRegistryStableMutexPerID(t *testing.T) {
	reg := newLockRegistry()

	a := reg.get(1001)
	b := reg.get(1002)
	if a == b {
		t.Fatal("distinct ids must map to distinct mutexes")
	}
	if reg.get(1001) != a {
		t.Fatal("same id must always yield the same mutex")
	}
}

func TestLockRegistryTryLock(t *testing.T) {
	reg := newLockRegistry()

	m := reg.get(7)
	if !m.TryLock() {
		t.Fatal("expected try-lock on free mutex to succeed")
	}
	if reg.get(7).TryLock() {
		t.Fatal("expected try-lock on held mutex to fail")
	}
	m.Unlock()
	if !reg.get(7).TryLock() {
		t.Fatal("expected try-lock after release to succeed")
	}
	reg.get(7).Unlock()
}
