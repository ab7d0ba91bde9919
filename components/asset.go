package components

import (
	"github.com/vectorgameexperts/velloplay/assets"
	"github.com/yohamta/donburi"
)

// AssetData binds an entity to a slot in the scene's asset store.
type AssetData struct {
	Handle assets.Handle
}

var Asset = donburi.NewComponentType[AssetData]()

// AssetStoreData exposes the scene's asset arena to systems. Singleton.
type AssetStoreData struct {
	Assets *assets.Store
}

var AssetStore = donburi.NewComponentType[AssetStoreData]()
