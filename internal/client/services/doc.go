// Package services contains application services for the Dungeon Keeper
// client. Services sit between the CLI and the lower layers: they combine
// backend calls with session store transitions so commands stay thin.
package services
