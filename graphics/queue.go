package graphics

// QueueSprite is one pending blit against a Sheet: which cell, where, and at
// what scale/rotation/anchor.
type QueueSprite struct {
	Position         Point
	CellID           int
	ScaleX, ScaleY   float32
	Rotation         int
	AnchorX, AnchorY float32
}

// Queue is an ordered, append-only list of pending sprite blits against a
// single Sheet, drawn in insertion order. It exists so script code can batch
// a frame's worth of sprites and flush them in one call instead of calling
// back into the host once per sprite.
type Queue struct {
	Sheet   *Sheet
	Sprites []QueueSprite
}

// NewQueue creates a queue against `sheet`, optionally pre-reserving
// capacity for `capacity` sprites.
func NewQueue(sheet *Sheet, capacity int) *Queue {
	var sprites []QueueSprite
	if capacity > 0 {
		sprites = make([]QueueSprite, 0, capacity)
	}
	return &Queue{Sheet: sheet, Sprites: sprites}
}

// Grow extends the queue's capacity by `amount` sprites.
func (q *Queue) Grow(amount int) {
	grown := make([]QueueSprite, len(q.Sprites), cap(q.Sprites)+amount)
	copy(grown, q.Sprites)
	q.Sprites = grown
}

// Resize sets the queue's capacity outright, discarding anything queued
// past the new capacity.
func (q *Queue) Resize(capacity int) {
	n := len(q.Sprites)
	if n > capacity {
		n = capacity
	}
	resized := make([]QueueSprite, n, capacity)
	copy(resized, q.Sprites[:n])
	q.Sprites = resized
}

// Clear empties the queue without releasing its backing array.
func (q *Queue) Clear() {
	q.Sprites = q.Sprites[:0]
}

// Add appends a sprite to the queue.
func (q *Queue) Add(sprite QueueSprite) {
	q.Sprites = append(q.Sprites, sprite)
}

// Blit draws every queued sprite, unscaled (ScaleX/ScaleY/Rotation/Anchor
// are ignored).
func (q *Queue) Blit(context *Context) {
	for _, sprite := range q.Sprites {
		q.Sheet.Blit(context, sprite.Position, sprite.CellID)
	}
}

// BlitScaled draws every queued sprite at its own scale.
func (q *Queue) BlitScaled(context *Context) {
	for _, sprite := range q.Sprites {
		q.Sheet.BlitScaled(context, sprite.Position, sprite.CellID, sprite.ScaleX, sprite.ScaleY)
	}
}

// BlitTransformed draws every queued sprite at its own scale, rotation and
// anchor.
func (q *Queue) BlitTransformed(context *Context) {
	for _, sprite := range q.Sprites {
		q.Sheet.BlitTransformed(context, sprite.Position, sprite.CellID, sprite.ScaleX, sprite.ScaleY, sprite.Rotation, sprite.AnchorX, sprite.AnchorY)
	}
}
