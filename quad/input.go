package main

import (
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Satisfied by *glfw.Window
type KeySource interface {
	GetKey(key glfw.Key) glfw.Action
}

type InputManager interface {
	TimeDelta() float32
	IsKeyDown(key glfw.Key) bool
	IsKeyTap(key glfw.Key) bool
	Update()
}

type input struct {
	source KeySource
	clock  func() float64
	// only these keys are sampled
	watched []glfw.Key
	curr    inputState
	prev    inputState
}

type inputState struct {
	time float32
	keys map[glfw.Key]bool
}

func NewInputManager(source KeySource, clock func() float64, watched ...glfw.Key) *input {
	i := &input{
		source:  source,
		clock:   clock,
		watched: watched,
		curr:    inputState{keys: map[glfw.Key]bool{}},
		prev:    inputState{keys: map[glfw.Key]bool{}},
	}

	i.Update()
	// Make sure dTime != 0 to avoid possible errors
	i.prev.time = i.curr.time - 1./60.
	for k, v := range i.curr.keys {
		i.prev.keys[k] = v
	}

	return i
}

func (i *input) TimeDelta() float32 {
	return i.curr.time - i.prev.time
}

func (i *input) IsKeyDown(key glfw.Key) bool {
	return i.curr.keys[key]
}

func (i *input) IsKeyTap(key glfw.Key) bool {
	return i.curr.keys[key] && !i.prev.keys[key]
}

func (i *input) Update() {
	keys := i.prev.keys
	i.prev = i.curr

	for _, key := range i.watched {
		keys[key] = i.source.GetKey(key) == glfw.Press
	}

	i.curr = inputState{
		time: float32(i.clock()),
		keys: keys,
	}
}
