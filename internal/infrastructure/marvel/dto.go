package marvel

import (
	"github.com/AnatolNica/HeroNexus-sub001/internal/domain/entity"
	"github.com/AnatolNica/HeroNexus-sub001/internal/domain/value"
)

type dataWrapper struct {
	Code   int           `json:"code"`
	Status string        `json:"status"`
	Data   dataContainer `json:"data"`
}

type dataContainer struct {
	Offset  int            `json:"offset"`
	Limit   int            `json:"limit"`
	Total   int            `json:"total"`
	Count   int            `json:"count"`
	Results []characterDTO `json:"results"`
}

type characterDTO struct {
	ID          int64        `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Thumbnail   thumbnailDTO `json:"thumbnail"`
}

type thumbnailDTO struct {
	Path      string `json:"path"`
	Extension string `json:"extension"`
}

func (t thumbnailDTO) url() string {
	if t.Path == "" {
		return ""
	}

	return t.Path + "." + t.Extension
}

func (c characterDTO) toDomain() entity.Character {
	return entity.Character{
		ID:           value.CharacterID(c.ID),
		Name:         c.Name,
		Description:  c.Description,
		ThumbnailURL: c.Thumbnail.url(),
	}
}

func (d dataContainer) toDomain() entity.CharacterPage {
	characters := make([]entity.Character, 0, len(d.Results))
	for _, c := range d.Results {
		characters = append(characters, c.toDomain())
	}

	return entity.CharacterPage{
		Total:      d.Total,
		Offset:     d.Offset,
		Limit:      d.Limit,
		Characters: characters,
	}
}
