package models

import "github.com/dmfaustino/DEI-RoomService/internal/domain"

// EquipmentResponse ответ с данными оборудования
type EquipmentResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	IsBroken bool   `json:"isBroken"`
}

// RoomResponse ответ с данными комнаты
type RoomResponse struct {
	ID        int64               `json:"id"`
	Name      string              `json:"name"`
	Capacity  int                 `json:"capacity"`
	Equipment []EquipmentResponse `json:"equipment"`
}

// RoomListResponse ответ со списком комнат
type RoomListResponse struct {
	Rooms []RoomResponse `json:"rooms"`
}

// FromDomainRoom конвертирует domain модель в DTO
func FromDomainRoom(r *domain.Room) *RoomResponse {
	if r == nil {
		return nil
	}

	resp := &RoomResponse{
		ID:        r.ID,
		Name:      r.Name,
		Capacity:  r.Capacity,
		Equipment: make([]EquipmentResponse, 0, len(r.Equipment)),
	}
	for _, eq := range r.Equipment {
		resp.Equipment = append(resp.Equipment, EquipmentResponse{
			ID:       eq.ID,
			Name:     eq.Name,
			IsBroken: eq.IsBroken,
		})
	}
	return resp
}

// FromDomainRoomList конвертирует список domain моделей в DTO
func FromDomainRoomList(rooms []domain.Room) *RoomListResponse {
	resp := &RoomListResponse{Rooms: make([]RoomResponse, 0, len(rooms))}
	for i := range rooms {
		resp.Rooms = append(resp.Rooms, *FromDomainRoom(&rooms[i]))
	}
	return resp
}
