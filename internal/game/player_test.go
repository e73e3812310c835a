package game

import (
	"errors"
	"testing"
)

func TestPlayerFight(t *testing.T) {
	cases := []struct {
		health   int
		strength Rank
		want     int
	}{
		{20, Five, 15},
		{20, Ace, 6},
		{7, Ace, 0},
		{3, Three, 0},
	}
	for _, tc := range cases {
		p := &Player{Health: tc.health}
		if err := p.Fight(NewCard(Spades, tc.strength)); err != nil {
			t.Fatalf("fight: %v", err)
		}
		if p.Health != tc.want {
			t.Fatalf("health %d vs %s = %d, want %d", tc.health, tc.strength, p.Health, tc.want)
		}
	}
}

func TestPlayerFightRejectsNonMonster(t *testing.T) {
	p := NewPlayer()
	for _, c := range []Card{NewCard(Diamonds, Five), NewCard(Hearts, Five)} {
		if err := p.Fight(c); !errors.Is(err, ErrNotAMonster) {
			t.Fatalf("Fight(%s) error = %v, want %v", c, err, ErrNotAMonster)
		}
	}
	if p.Health != MaxHealth {
		t.Fatalf("health changed to %d", p.Health)
	}
}

func TestPlayerKillRequiresWeapon(t *testing.T) {
	p := NewPlayer()
	if err := p.Kill(NewCard(Clubs, Five)); !errors.Is(err, ErrNoWeaponEquipped) {
		t.Fatalf("Kill() error = %v, want %v", err, ErrNoWeaponEquipped)
	}
	if err := p.Kill(NewCard(Hearts, Five)); !errors.Is(err, ErrNotAMonster) {
		t.Fatalf("Kill(potion) error = %v, want %v", err, ErrNotAMonster)
	}
}

func TestPlayerKillWeaponDegrades(t *testing.T) {
	p := NewPlayer()
	if err := p.EquipWeapon(NewCard(Diamonds, Five)); err != nil {
		t.Fatalf("equip: %v", err)
	}

	if err := p.Kill(NewCard(Spades, Nine)); err != nil {
		t.Fatalf("kill 9: %v", err)
	}
	if p.Health != 16 || p.Weapon.LastSlain != 9 {
		t.Fatalf("after kill 9: health=%d last=%d", p.Health, p.Weapon.LastSlain)
	}

	for _, r := range []Rank{Nine, Ten, Ace} {
		if err := p.Kill(NewCard(Clubs, r)); !errors.Is(err, ErrMonsterTooStrongForWeapon) {
			t.Fatalf("Kill(%s) error = %v, want %v", r, err, ErrMonsterTooStrongForWeapon)
		}
	}
	if p.Health != 16 || p.Weapon.LastSlain != 9 {
		t.Fatalf("rejected kill mutated player: %+v", p)
	}

	if err := p.Kill(NewCard(Clubs, Three)); err != nil {
		t.Fatalf("kill 3: %v", err)
	}
	if p.Health != 16 {
		t.Fatalf("weapon stronger than monster should absorb all damage, health=%d", p.Health)
	}
	if p.Weapon.LastSlain != 3 {
		t.Fatalf("LastSlain = %d, want 3", p.Weapon.LastSlain)
	}
}

func TestPlayerEquipResetsKillHistory(t *testing.T) {
	p := &Player{Health: 20, Weapon: EquippedWeapon{Strength: 8, LastSlain: 4}}
	if err := p.EquipWeapon(NewCard(Diamonds, Three)); err != nil {
		t.Fatalf("equip: %v", err)
	}
	if p.Weapon != (EquippedWeapon{Strength: 3}) {
		t.Fatalf("weapon = %+v, want {3 0}", p.Weapon)
	}
	if err := p.EquipWeapon(NewCard(Spades, Three)); !errors.Is(err, ErrNotAWeapon) {
		t.Fatalf("EquipWeapon(monster) error = %v, want %v", err, ErrNotAWeapon)
	}
}

func TestPlayerHealOncePerTurn(t *testing.T) {
	p := &Player{Health: 5}
	if err := p.Heal(NewCard(Hearts, Six), 3); err != nil {
		t.Fatalf("heal: %v", err)
	}
	if p.Health != 11 || p.LastHealedTurn != 3 {
		t.Fatalf("after heal: %+v", p)
	}
	if err := p.Heal(NewCard(Hearts, Nine), 3); err != nil {
		t.Fatalf("second heal: %v", err)
	}
	if p.Health != 11 {
		t.Fatalf("second heal in a turn changed health to %d", p.Health)
	}
	if err := p.Heal(NewCard(Hearts, Ten), 4); err != nil {
		t.Fatalf("heal next turn: %v", err)
	}
	if p.Health != MaxHealth {
		t.Fatalf("health = %d, want capped at %d", p.Health, MaxHealth)
	}
}

func TestPlayerHealRejectsNonPotion(t *testing.T) {
	p := &Player{Health: 5}
	if err := p.Heal(NewCard(Diamonds, Six), 1); !errors.Is(err, ErrNotAPotion) {
		t.Fatalf("Heal() error = %v, want %v", err, ErrNotAPotion)
	}
	if p.LastHealedTurn != 0 {
		t.Fatalf("rejected heal recorded turn %d", p.LastHealedTurn)
	}
}
