// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package export

import (
	"fmt"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/danielhkuo/raffle-bot/models"
)

const sheetName = "Учасники"

var headerRow = []interface{}{"№", "ID у Telegram", "Telegram", "Ім'я", "Телефон", "Магазин №", "Дата"}

// ParticipantsXLSX renders all registrations as an Excel workbook and
// returns the file contents.
func ParticipantsXLSX(participants []models.Participant) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	if err := f.SetSheetRow(sheetName, "A1", &headerRow); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}

	for i, p := range participants {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		row := participantRow(p)
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return nil, fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("serialize workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func participantRow(p models.Participant) []interface{} {
	tgID := ""
	if p.TgUserID != nil {
		tgID = strconv.FormatInt(*p.TgUserID, 10)
	}
	username := ""
	if p.Username != "" {
		username = "@" + p.Username
	}
	store := ""
	if p.StoreNo != nil {
		store = strconv.Itoa(*p.StoreNo)
	}
	return []interface{}{
		p.ID,
		tgID,
		username,
		p.FullName,
		p.Phone,
		store,
		p.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}
