package vista

import "github.com/LBGeo/gestion-repuestos/internal/models"

// Indice resuelve claves foráneas en O(1). Se arma una vez por carga.
type Indice[T models.Entity] map[uint]T

// NuevoIndice indexa por clave primaria. Ante ids repetidos gana la primera fila.
func NuevoIndice[T models.Entity](filas []T) Indice[T] {
	idx := make(Indice[T], len(filas))
	for _, f := range filas {
		if _, ok := idx[f.GetID()]; !ok {
			idx[f.GetID()] = f
		}
	}
	return idx
}

func (i Indice[T]) Buscar(id uint) (T, bool) {
	v, ok := i[id]
	return v, ok
}

func etiquetaCliente(idx Indice[models.Cliente], id uint) (string, *models.Cliente) {
	if c, ok := idx.Buscar(id); ok {
		return c.NombreCompleto(), &c
	}
	return models.ClienteNoEncontrado, nil
}

func etiquetaRepuesto(idx Indice[models.Repuesto], id uint) (string, *models.Repuesto) {
	if r, ok := idx.Buscar(id); ok {
		return r.Descripcion(), &r
	}
	return models.RepuestoNoEncontrado, nil
}

func etiquetaProveedor(idx Indice[models.Proveedor], id uint) string {
	if p, ok := idx.Buscar(id); ok {
		return p.Nombre
	}
	return models.SinDato
}

func etiquetaEquivalencia(idx Indice[models.Equivalencia], id *uint) string {
	if id == nil {
		return models.SinDato
	}
	if e, ok := idx.Buscar(*id); ok {
		return e.Codigos()
	}
	return models.SinDato
}

func etiquetaVenta(idx Indice[models.RegistroVenta], id uint) (string, *models.RegistroVenta) {
	if v, ok := idx.Buscar(id); ok {
		return v.Fecha(), &v
	}
	return models.VentaNoEncontrada, nil
}
