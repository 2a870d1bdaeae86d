package nodegraph

import "github.com/google/uuid"

// NodeID stably identifies a Node instance across a session, so an
// out-of-scope UI or scripting collaborator can reference a node by value
// rather than by its position in a slice. Grounded on original_source's
// slotmap-backed BjkNodeId, generalized from a generational arena handle
// to a UUID since nodegraph has no arena of its own to generate one from.
type NodeID uuid.UUID

// NewNodeID mints a fresh, random NodeID.
func NewNodeID() NodeID { return NodeID(uuid.New()) }

func (id NodeID) String() string { return uuid.UUID(id).String() }

// Nil reports whether id is the zero NodeID, used as a sentinel for "no
// node" (e.g. an unset Connection source before it is wired).
func (id NodeID) Nil() bool { return id == NodeID{} }

// ExternalParamID stably identifies a value in the external-parameter
// store, independent of which node(s) currently read it under a promoted
// name.
type ExternalParamID uuid.UUID

func NewExternalParamID() ExternalParamID { return ExternalParamID(uuid.New()) }

func (id ExternalParamID) String() string { return uuid.UUID(id).String() }
