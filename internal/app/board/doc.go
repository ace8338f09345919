// Package board holds the shared state of one retrospective board.
//
// A Store keeps the latest Snapshot and publishes every change, in version
// order, to its subscribers. Board contents and the feed's connect query are
// shared by every subscriber; the statuses of the other command families are
// kept per subscriber, so one viewer's failed command never shows up in
// another viewer's view. A Dispatcher sends fire-and-forget commands
// upstream through a Handle bound to the issuing subscriber and folds their
// outcomes back into the Store.
package board
