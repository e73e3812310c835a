package game

const MaxHealth = 20

// EquippedWeapon is the equipped Diamonds card. Strength 0 means bare hands;
// LastSlain 0 means the weapon has not killed anything yet.
type EquippedWeapon struct {
	Strength  int
	LastSlain int
}

type Player struct {
	Health         int
	Weapon         EquippedWeapon
	LastHealedTurn int
}

func NewPlayer() *Player {
	return &Player{Health: MaxHealth}
}

// Fight takes the full hit of a monster.
func (p *Player) Fight(c Card) error {
	if c.Kind != Monster {
		return ErrNotAMonster
	}
	p.takeDamage(c.Strength)
	return nil
}

// Kill resolves a monster with the equipped weapon. Once a weapon has slain
// a monster it can only be used on strictly weaker ones.
func (p *Player) Kill(c Card) error {
	if c.Kind != Monster {
		return ErrNotAMonster
	}
	if p.Weapon.Strength == 0 {
		return ErrNoWeaponEquipped
	}
	if p.Weapon.LastSlain != 0 && c.Strength >= p.Weapon.LastSlain {
		return ErrMonsterTooStrongForWeapon
	}
	if c.Strength > p.Weapon.Strength {
		p.takeDamage(c.Strength - p.Weapon.Strength)
	}
	p.Weapon.LastSlain = c.Strength
	return nil
}

func (p *Player) EquipWeapon(c Card) error {
	if c.Kind != Weapon {
		return ErrNotAWeapon
	}
	p.Weapon = EquippedWeapon{Strength: c.Strength}
	return nil
}

// Heal drinks a potion. Only the first potion of a turn restores health;
// later ones are wasted without an error.
func (p *Player) Heal(c Card, turn int) error {
	if c.Kind != Potion {
		return ErrNotAPotion
	}
	if p.LastHealedTurn == turn {
		return nil
	}
	p.Health = min(p.Health+c.Strength, MaxHealth)
	p.LastHealedTurn = turn
	return nil
}

func (p *Player) takeDamage(n int) {
	p.Health -= min(n, p.Health)
}
