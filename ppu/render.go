package ppu

// renderScanline fills framebuffer row `line` (0..223) following the
// contract-level rules: force-blank -> black, otherwise backdrop fill,
// mode-ordered background composite, sprite overlay, brightness scale.
// This does not implement per-layer priority, window masking or color
// math; those stay out of scope.
func (p *PPU) renderScanline(line int) {
	row := p.framebuffer[line*screenWidth*4 : (line+1)*screenWidth*4]

	if p.forceBlank {
		for i := range row {
			row[i] = 0
		}
		return
	}

	br, bg, bb := p.backdropColor()
	for x := 0; x < screenWidth; x++ {
		p.setPixel(row, x, br, bg, bb)
	}

	for _, layer := range p.bgDrawOrder() {
		if !p.bgEnabled[layer] {
			continue
		}
		if p.screenMode == 7 && layer == 0 {
			p.renderMode7Row(row, line)
			continue
		}
		p.renderBGRow(row, line, layer)
	}

	if p.objEnabled {
		p.renderSpriteRow(row, line)
	}

	p.applyBrightness(row)
}

// bgDrawOrder returns background indices back-to-front for the current
// screen mode. Mode 1 draws BG3 first (furthest back) per spec; other
// modes fall back to a simple ascending composite.
func (p *PPU) bgDrawOrder() []int {
	if p.screenMode == 1 {
		return []int{2, 1, 0}
	}
	return []int{3, 2, 1, 0}
}

func (p *PPU) setPixel(row []byte, x int, r, g, b uint8) {
	off := x * 4
	row[off] = r
	row[off+1] = g
	row[off+2] = b
	row[off+3] = 0xFF
}

func (p *PPU) renderBGRow(row []byte, line, layer int) {
	cfg := p.bg[layer]
	bpp := p.bppForMode(layer)
	tileSize := 8
	if cfg.tile16x16 {
		tileSize = 16
	}

	y := (line + int(cfg.vScroll)) & 0x3FF
	tileRow := y / tileSize
	withinTileY := y % tileSize

	for x := 0; x < screenWidth; x++ {
		sx := (x + int(cfg.hScroll)) & 0x3FF
		tileCol := sx / tileSize
		withinTileX := sx % tileSize

		tilemapWidth := 32
		if cfg.tilemapSize == 1 || cfg.tilemapSize == 3 {
			tilemapWidth = 64
		}
		entryAddr := cfg.tilemapBase + uint16((tileRow%tilemapWidth)*tilemapWidth+(tileCol%tilemapWidth))*2
		if int(entryAddr)+1 >= len(p.vram) {
			continue
		}
		entry := uint16(p.vram[entryAddr]) | uint16(p.vram[entryAddr+1])<<8
		tileIndex := entry & 0x3FF
		paletteGroup := uint8((entry >> 10) & 0x07)

		colorIndex := p.decodeTilePixel(bpp, cfg.tileDataBase, tileIndex, withinTileX, withinTileY, tileSize)
		if colorIndex == 0 {
			continue // transparent, backdrop/lower layer shows through
		}
		palIndex := int(colorIndex)
		if bpp != 8 {
			palIndex += int(paletteGroup) * (1 << bpp)
		}
		r, g, b := p.decodeCGRAMColor(palIndex & 0xFF)
		p.setPixel(row, x, r, g, b)
	}
}

// bppForMode returns the bit depth for a background layer under the
// current screen mode (simplified: Mode 0 = 2bpp all layers, Mode 1 =
// 4bpp BG1/2, 2bpp BG3, everything else falls back to 4bpp).
func (p *PPU) bppForMode(layer int) int {
	switch p.screenMode {
	case 0:
		return 2
	case 1:
		if layer == 2 {
			return 2
		}
		return 4
	default:
		return 4
	}
}

// decodeTilePixel reads one pixel out of a planar-format tile: bpp/2
// pairs of 16-byte bitplane blocks, interleaved every 16 bytes for 4/8bpp.
func (p *PPU) decodeTilePixel(bpp int, base uint16, tileIndex uint16, x, y, tileSize int) uint8 {
	bytesPerTile := 8 * bpp
	tileAddr := int(base) + int(tileIndex)*bytesPerTile
	if tileSize == 16 {
		// 16x16 tiles are four adjacent 8x8 tiles; pick the right quadrant.
		quadCols := 16 / 8
		qx, qy := x/8, y/8
		tileAddr += (qy*quadCols + qx) * bytesPerTile
		x, y = x%8, y%8
	}

	var value uint8
	planes := bpp
	for plane := 0; plane < planes; plane++ {
		pairIndex := plane / 2
		bitInPair := plane % 2
		rowAddr := tileAddr + pairIndex*16 + y*2 + bitInPair
		if rowAddr < 0 || rowAddr >= len(p.vram) {
			continue
		}
		rowByte := p.vram[rowAddr]
		bit := (rowByte >> (7 - x)) & 1
		value |= bit << plane
	}
	return value
}

func (p *PPU) renderMode7Row(row []byte, line int) {
	cfg := p.bg[0]
	bpp := 8
	for x := 0; x < screenWidth; x++ {
		dx := int32(x) - int32(p.m7X)
		dy := int32(line) - int32(p.m7Y)
		srcX := (int32(p.m7A)*dx + int32(p.m7B)*dy) >> 8
		srcY := (int32(p.m7C)*dx + int32(p.m7D)*dy) >> 8

		if p.m7Flip&0x01 != 0 {
			srcX = -srcX
		}
		if p.m7Flip&0x02 != 0 {
			srcY = -srcY
		}

		const mapSize = 1024
		if !p.m7Repeat && (srcX < 0 || srcX >= mapSize || srcY < 0 || srcY >= mapSize) {
			continue
		}
		tx := int(srcX) & (mapSize - 1)
		ty := int(srcY) & (mapSize - 1)

		tileCol, tileRow := tx/8, ty/8
		withinX, withinY := tx%8, ty%8

		entryAddr := uint16((tileRow*128 + tileCol) * 2 % len(p.vram))
		if int(entryAddr) >= len(p.vram) {
			continue
		}
		tileIndex := uint16(p.vram[entryAddr])

		colorIndex := p.decodeTilePixel(bpp, cfg.tileDataBase, tileIndex, withinX, withinY, 8)
		if colorIndex == 0 {
			continue
		}
		r, g, b := p.decodeCGRAMColor(int(colorIndex))
		p.setPixel(row, x, r, g, b)
	}
}

// renderSpriteRow overlays any of the 128 OAM sprites intersecting this
// line, lowest OAM index drawn last (highest priority), matching real
// hardware's front-to-back index order within the 32-sprite-per-line cap.
func (p *PPU) renderSpriteRow(row []byte, line int) {
	const maxSpritesPerLine = 32
	var visible []int
	for i := 0; i < 128 && len(visible) < maxSpritesPerLine; i++ {
		yPos := int(p.oam[i*4+1])
		if line >= yPos && line < yPos+p.spriteHeight(i) {
			visible = append(visible, i)
		}
	}
	for k := len(visible) - 1; k >= 0; k-- {
		i := visible[k]
		base := i * 4
		yPos := int(p.oam[base+1])
		xPos := int(p.oam[base])
		tileIndex := uint16(p.oam[base+2])
		attr := p.oam[base+3]
		palGroup := (attr >> 1) & 0x07

		withinY := line - yPos
		for col := 0; col < 8; col++ {
			x := xPos + col
			if x < 0 || x >= screenWidth {
				continue
			}
			colorIndex := p.decodeTilePixel(4, p.objNameBase, tileIndex, col, withinY%8, 8)
			if colorIndex == 0 {
				continue
			}
			palIndex := 128 + int(colorIndex) + int(palGroup)*16
			r, g, b := p.decodeCGRAMColor(palIndex & 0xFF)
			p.setPixel(row, x, r, g, b)
		}
	}
}

func (p *PPU) spriteHeight(_ int) int {
	switch p.objSizeIndex {
	case 0:
		return 8
	default:
		return 16
	}
}

func (p *PPU) applyBrightness(row []byte) {
	if p.brightness >= 15 {
		return
	}
	scale := uint32(p.brightness)
	for i := 0; i < len(row); i += 4 {
		row[i] = uint8(uint32(row[i]) * scale / 15)
		row[i+1] = uint8(uint32(row[i+1]) * scale / 15)
		row[i+2] = uint8(uint32(row[i+2]) * scale / 15)
	}
}
