// Package ecs provides ECS adapters for gridmenu's menu events.
//
// The primary adapter is [NewDonburiSink], which bridges menu events (hover,
// touch, point mutations, resize) into a [Donburi] world as typed events.
// Subscribe to [MenuEventType] in your ECS systems to receive them.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	app, err := gridmenu.NewApp(cfg, sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
