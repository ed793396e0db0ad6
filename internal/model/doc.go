package model

// Package model defines the session state shared by the clip pipeline: the
// per-stage status enum, the stage record carrying the produced artifact, and
// the derived gating rules the UI and CLI render from. Structures are designed
// for direct binding in the UI and explicit state transitions.
