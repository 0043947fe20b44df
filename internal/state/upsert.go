package state

// Entity: semua entitas ber-id opaque (barang, supplier, user, transaksi).
type Entity interface {
	GetID() string
}

// upsertByID: satu implementasi untuk ketiga koleksi master.
//   - isDelete: buang elemen dengan id sama; id tak ada = no-op.
//   - id sudah ada: ganti di tempat (urutan koleksi stabil).
//   - id belum ada: tambah di belakang.
func upsertByID[T Entity](list []T, e T, isDelete bool) []T {
	if isDelete {
		out := make([]T, 0, len(list))
		for _, cur := range list {
			if cur.GetID() != e.GetID() {
				out = append(out, cur)
			}
		}
		return out
	}

	out := make([]T, len(list))
	copy(out, list)
	for i, cur := range out {
		if cur.GetID() == e.GetID() {
			out[i] = e
			return out
		}
	}
	return append(out, e)
}
