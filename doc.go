/*
Package signet provides a minimal Entity-Component-System (ECS) core built around
bitmask signatures.

Every component kind is registered once against a World and receives a signature: a
single bit of a 64-bit mask. An entity's mask is the OR of the signatures of the
components attached to it, and scenes select entities by testing that mask.

Core Concepts:

  - Signature: A single-bit tag identifying one component kind.
  - Mask: An OR of signatures, used as an entity's composition or a query's requirement.
  - Entity: A unique identity plus its mask and signature->component mapping.
  - Scene: The live set of entities, queried with Filter.
  - World: The context issuing identities and signatures and holding the active scene.

Entity.Has answers "any of these kinds", while Scene.Filter answers "all of these kinds":

	entity.Has(MaskOf(position.Signature, renderable.Signature)) // either one is enough
	scene.Filter(position.Mask(), renderable.Mask())              // both are required

Basic Usage:

	world := signet.Factory.NewWorld()
	position, _ := world.RegisterKind("position")
	health, _ := world.RegisterKind("health")

	player, _ := world.Spawn(Health{Tag: signet.NewTag(health), Current: 10})

	for _, e := range world.Scene().Filter(position.Mask(), health.Mask()) {
		...
	}

A world supports at most MaxKinds component kinds; registering more returns a
SignatureOverflowError.
*/
package signet
