// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Raffle-bot runs a Telegram promotional-giveaway bot: customers register
// by sending a receipt photo and answering three questions, admins manage
// the raffle and draw winners, and every registration is mirrored to a
// Google spreadsheet.
package main
