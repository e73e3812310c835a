package game

const RoomCapacity = 4

// Room holds the face-up cards of the current turn. Indexes are 0-based and
// shift down after a removal, so callers must look a card up again after
// any Remove.
type Room struct {
	cards    []Card
	capacity int
}

func NewRoom() *Room {
	return &Room{
		cards:    make([]Card, 0, RoomCapacity),
		capacity: RoomCapacity,
	}
}

func (r *Room) IsFull() bool {
	return len(r.cards) == r.capacity
}

func (r *Room) Len() int {
	return len(r.cards)
}

func (r *Room) Add(c Card) error {
	if r.IsFull() {
		return ErrRoomFull
	}
	r.cards = append(r.cards, c)
	return nil
}

func (r *Room) Get(index int) (Card, error) {
	if index < 0 || index >= len(r.cards) {
		return Card{}, ErrIndexOutOfBounds
	}
	return r.cards[index], nil
}

func (r *Room) Remove(index int) (Card, error) {
	if index < 0 || index >= len(r.cards) {
		return Card{}, ErrIndexOutOfBounds
	}
	c := r.cards[index]
	r.cards = append(r.cards[:index], r.cards[index+1:]...)
	return c, nil
}

// ClearInto moves every card, in room order, to the bottom of d.
func (r *Room) ClearInto(d *Deck) {
	d.PutOnBottom(r.cards...)
	r.cards = r.cards[:0]
}

// Cards returns a copy of the room in slot order.
func (r *Room) Cards() []Card {
	return append([]Card(nil), r.cards...)
}
