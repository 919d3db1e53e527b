package rules

import "testing"

func TestNext(t *testing.T) {
	for n := 0; n <= 8; n++ {
		wantAlive := Dead
		if n == 2 || n == 3 {
			wantAlive = Alive
		}
		if got := Next(Alive, n); got != wantAlive {
			t.Fatalf("Next(Alive, %d) = %d, expected %d", n, got, wantAlive)
		}

		wantDead := Dead
		if n == 3 {
			wantDead = Alive
		}
		if got := Next(Dead, n); got != wantDead {
			t.Fatalf("Next(Dead, %d) = %d, expected %d", n, got, wantDead)
		}
	}
}

func TestIsAlive(t *testing.T) {
	if !Alive.IsAlive() {
		t.Fatal("Alive.IsAlive() = false")
	}
	if Dead.IsAlive() {
		t.Fatal("Dead.IsAlive() = true")
	}
}
