// Package clock provides a calibrated monotonic process clock for the
// mLog logging framework.
//
// Package: clock
// Title: mLog Monotonic Process Clock
// Description: This package implements a drift-stable elapsed-time source
//              measured in seconds since process start. The tick-to-second
//              conversion factor is calibrated exactly once per process and
//              cached for the process lifetime; concurrent first calls all
//              observe the same calibration. The wall-clock instant captured
//              at calibration time anchors absolute timestamp rendering.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-09
// Modified: 2025-02-09
//
// Change History:
// - 2025-02-09 v0.1.0: Initial implementation with one-time calibration
//
// The calibration is never refreshed, even though the true tick rate could
// change under CPU frequency scaling. This is an accepted approximation;
// callers get a single consistent timeline, not a drift-corrected one.
//
// Usage:
//   elapsed := clock.Now()          // seconds since process start
//   anchor := clock.Start()         // wall-clock instant of first use
package clock
