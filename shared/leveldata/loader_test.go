package leveldata

import (
	"testing"
	"testing/fstest"
)

const plazaTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="40" height="20" tilewidth="16" tileheight="16" infinite="0" nextlayerid="2" nextobjectid="3">
 <objectgroup id="1" name="PlayerSpawn">
  <object id="1" x="96" y="64">
   <properties>
    <property name="spawnIndex" type="int" value="1"/>
   </properties>
  </object>
  <object id="2" x="32" y="48">
   <properties>
    <property name="spawnIndex" type="int" value="0"/>
   </properties>
  </object>
 </objectgroup>
</map>
`

func TestLoadLevel(t *testing.T) {
	fsys := fstest.MapFS{"levels/plaza.tmx": {Data: []byte(plazaTMX)}}

	lvl, err := LoadLevel(fsys, "levels/plaza.tmx")
	if err != nil {
		t.Fatalf("LoadLevel: %v", err)
	}
	if lvl.Name != "plaza" || lvl.Width != 640 || lvl.Height != 320 {
		t.Fatalf("level = %+v", lvl)
	}
	if len(lvl.SpawnPoints) != 2 || lvl.SpawnPoints[0].X != 32 {
		t.Fatalf("spawns = %+v", lvl.SpawnPoints)
	}
	if x, y := lvl.Spawn(1); x != 96 || y != 64 {
		t.Fatalf("spawn 1 = %v,%v", x, y)
	}
	if x, y := lvl.Spawn(7); x != 320 || y != 160 {
		t.Fatalf("missing spawn = %v,%v", x, y)
	}
}

func TestLoadAllLevels(t *testing.T) {
	fsys := fstest.MapFS{
		"levels/plaza.tmx":  {Data: []byte(plazaTMX)},
		"levels/arcade.tmx": {Data: []byte(plazaTMX)},
	}
	levels, names, err := LoadAllLevels(fsys, "levels")
	if err != nil {
		t.Fatalf("LoadAllLevels: %v", err)
	}
	if len(names) != 2 || names[0] != "arcade" || levels["plaza"] == nil {
		t.Fatalf("names = %v", names)
	}

	if _, _, err := LoadAllLevels(fstest.MapFS{}, "levels"); err == nil {
		t.Fatal("expected error for empty directory")
	}
}
