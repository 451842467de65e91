package ports

// DecoyCache guarda decoys já gerados, chaveados pela manchete real
// normalizada (domain.NormalizeHeadline). Entradas expiradas são tratadas
// como ausentes pelo Get mesmo antes de um Sweep.
type DecoyCache interface {
	Get(key string) (string, bool)
	Put(key, value string)
	Sweep()
}
