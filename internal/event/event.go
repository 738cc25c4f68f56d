// internal/event/event.go
package event

import "reflect"

// EventType — имя события виджета.
type EventType string

// Event — событие с необязательной полезной нагрузкой.
type Event struct {
	Type EventType
	Data interface{}
}

// Listener получает события, на которые подписан.
type Listener interface {
	OnEvent(event Event)
}

// ListenerFunc позволяет подписать обычную функцию.
type ListenerFunc func(event Event)

func (f ListenerFunc) OnEvent(event Event) { f(event) }

// Dispatcher — синхронный диспетчер событий одного виджета.
// Вызывается только из тика, под замком виджета.
type Dispatcher struct {
	listeners map[EventType][]Listener
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{listeners: make(map[EventType][]Listener)}
}

// Subscribe добавляет слушателя в конец списка: порядок доставки совпадает с порядком подписки.
func (d *Dispatcher) Subscribe(t EventType, l Listener) {
	d.listeners[t] = append(d.listeners[t], l)
}

// Unsubscribe снимает слушателя. Несравнимых слушателей (функции, структуры со срезами)
// снимает только Reset.
func (d *Dispatcher) Unsubscribe(t EventType, l Listener) {
	if !isComparable(l) {
		return
	}
	list := d.listeners[t]
	for i, cur := range list {
		if isComparable(cur) && cur == l {
			d.listeners[t] = append(list[:i], list[i+1:]...)
			return
		}
	}
}

func isComparable(l Listener) bool {
	return l != nil && reflect.ValueOf(l).Comparable()
}

// Reset снимает всех подписчиков (размонтирование).
func (d *Dispatcher) Reset() {
	clear(d.listeners)
}

// Dispatch доставляет событие подписчикам по порядку.
func (d *Dispatcher) Dispatch(e Event) {
	for _, l := range d.listeners[e.Type] {
		l.OnEvent(e)
	}
}
